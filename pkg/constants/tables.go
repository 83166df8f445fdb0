package constants

// Destination tables for classified roster rows. Each role maps to exactly
// one of these; a record never lives in more than one.
const (
	TableAgents             = "agents"
	TableSupervisors        = "supervisors"
	TableTrainers           = "trainers"
	TableQualityAnalysts    = "quality_analysts"
	TableOperationsManagers = "operations_managers"

	TableAttrition = "attrition"
)

// RoleTables lists the role-partition tables in reporting order.
var RoleTables = []string{
	TableAgents,
	TableSupervisors,
	TableTrainers,
	TableQualityAnalysts,
	TableOperationsManagers,
}

// IsRoleTable reports whether name is one of the role-partition tables.
func IsRoleTable(name string) bool {
	for _, t := range RoleTables {
		if t == name {
			return true
		}
	}
	return false
}
