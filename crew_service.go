package main

import "sort"

var roleLabels = map[string]string{
	"ground_crew":      "Ground Crew",
	"flight_attendant": "Flight Attendant",
	"dispatcher":       "Dispatcher",
	"first_officer":    "First Officer",
	"captain":          "Captain",
	"chief_pilot":      "Chief Pilot",
}

// RoleLabel returns the display name for a role, falling back to the raw
// role string for anything unmapped.
func RoleLabel(role string) string {
	if label, ok := roleLabels[role]; ok {
		return label
	}
	return role
}

// EmployeeView is one roster card: the employee plus their effective role and
// render-time badges.
type EmployeeView struct {
	Employee
	DisplayRole string   `json:"displayRole"`
	RoleLabel   string   `json:"roleLabel"`
	Badges      []string `json:"badges"`
}

// CrewView is the roster page: all employees (filtered), the filterable role
// set, and the combined totals across the whole roster.
type CrewView struct {
	Employees       []EmployeeView `json:"employees"`
	Roles           []string       `json:"roles"`
	Filter          string         `json:"filter"`
	TotalEmployees  int            `json:"totalEmployees"`
	CombinedHours   float64        `json:"combinedHours"`
	CombinedFlights int            `json:"combinedFlights"`
}

// CrewService backs the crew roster page. The roster is unpaginated; role
// filtering is a local re-render.
type CrewService struct {
	host *HostClient
}

func NewCrewService(host *HostClient) *CrewService {
	return &CrewService{host: host}
}

// GetCrew pulls the roster and applies the role filter ("all" or empty for
// no filter). Totals always cover the unfiltered roster.
func (c *CrewService) GetCrew(filter string) CrewView {
	employees := c.host.FetchEmployees()

	view := CrewView{
		Filter:         filter,
		TotalEmployees: len(employees),
		Roles:          []string{"all"},
	}

	seen := map[string]bool{}
	for _, e := range employees {
		view.CombinedHours += e.FlightHours
		view.CombinedFlights += e.TotalFlights
		role := e.EffectiveRole()
		if !seen[role] {
			seen[role] = true
			view.Roles = append(view.Roles, role)
		}
	}
	sort.Strings(view.Roles[1:])

	for _, e := range employees {
		role := e.EffectiveRole()
		if filter != "" && filter != "all" && role != filter {
			continue
		}
		view.Employees = append(view.Employees, EmployeeView{
			Employee:    e,
			DisplayRole: role,
			RoleLabel:   RoleLabel(role),
			Badges:      EmployeeBadges(e),
		})
	}
	return view
}
