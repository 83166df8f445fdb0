package services

import (
	"strings"

	"github.com/aarondl/null/v8"

	"roster-system/pkg/constants"
)

// roleTables maps every known role spelling (lowercased) to its
// destination table. Synonyms follow the vocabulary the roster sheets
// actually use.
var roleTables = map[string]string{
	"associate":          constants.TableAgents,
	"agent":              constants.TableAgents,
	"supervisor":         constants.TableSupervisors,
	"sup":                constants.TableSupervisors,
	"trainer":            constants.TableTrainers,
	"train":              constants.TableTrainers,
	"qa":                 constants.TableQualityAnalysts,
	"analyst":            constants.TableQualityAnalysts,
	"quality analyst":    constants.TableQualityAnalysts,
	"quality assurance":  constants.TableQualityAnalysts,
	"om":                 constants.TableOperationsManagers,
	"operations manager": constants.TableOperationsManagers,
	"operations":         constants.TableOperationsManagers,
}

// ClassifyRole maps a normalized role to its destination table. Total
// function: unknown, blank and null roles all report ok=false, never an
// error, so the orchestrator can record the row as skipped with a trace.
func ClassifyRole(role null.String) (table string, ok bool) {
	if !role.Valid {
		return "", false
	}
	table, ok = roleTables[strings.ToLower(strings.TrimSpace(role.String))]
	return table, ok
}
