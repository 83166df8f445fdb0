package services

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"

	"roster-system/pkg/constants"
)

func TestClassifyRole_KnownRoles(t *testing.T) {
	cases := map[string]string{
		"Associate":          constants.TableAgents,
		"associate":          constants.TableAgents,
		"AGENT":              constants.TableAgents,
		"Supervisor":         constants.TableSupervisors,
		"sup":                constants.TableSupervisors,
		"Trainer":            constants.TableTrainers,
		"QA":                 constants.TableQualityAnalysts,
		"Quality Analyst":    constants.TableQualityAnalysts,
		"quality assurance":  constants.TableQualityAnalysts,
		"OM":                 constants.TableOperationsManagers,
		"Operations Manager": constants.TableOperationsManagers,
		"  Trainer  ":        constants.TableTrainers,
	}
	for role, want := range cases {
		table, ok := ClassifyRole(null.StringFrom(role))
		assert.True(t, ok, "role %q", role)
		assert.Equal(t, want, table, "role %q", role)
	}
}

func TestClassifyRole_Unknown(t *testing.T) {
	for _, role := range []string{"Intern", "Manager of Everything", ""} {
		table, ok := ClassifyRole(null.StringFrom(role))
		assert.False(t, ok, "role %q", role)
		assert.Empty(t, table)
	}
}

func TestClassifyRole_Null(t *testing.T) {
	table, ok := ClassifyRole(null.String{})
	assert.False(t, ok)
	assert.Empty(t, table)
}
