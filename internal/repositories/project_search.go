package repositories

// ProjectSearchCriteria describes a filtered, paginated project query.
// A zero value lists the first page of open projects.
type ProjectSearchCriteria struct {
	Search     string
	Category   string
	BudgetMin  *float64
	BudgetMax  *float64
	Skills     []string
	Status     string
	EmployerID string
	Page       int
	PageSize   int
}

const (
	DefaultPageSize = 12
	MaxPageSize     = 50
)

// SearchCondition is a single WHERE predicate with its arguments, kept
// separate from gorm so the filter logic stays unit-testable.
type SearchCondition struct {
	Expr string
	Args []interface{}
}

// Normalize fills in pagination defaults and the implicit status
// filter. Scoping by employer replaces the status filter entirely so
// owners see their closed and cancelled projects too.
func (c *ProjectSearchCriteria) Normalize() {
	if c.Page < 1 {
		c.Page = 1
	}
	if c.PageSize < 1 {
		c.PageSize = DefaultPageSize
	}
	if c.PageSize > MaxPageSize {
		c.PageSize = MaxPageSize
	}
	if c.EmployerID != "" {
		c.Status = ""
	} else if c.Status == "" {
		c.Status = "open"
	}
}

// Offset returns the row offset for the normalized page.
func (c ProjectSearchCriteria) Offset() int {
	return (c.Page - 1) * c.PageSize
}

// Conditions builds the WHERE predicates for the criteria. The same
// set is applied to the count query and the page query.
func (c ProjectSearchCriteria) Conditions() []SearchCondition {
	var conds []SearchCondition

	if c.Search != "" {
		pattern := "%" + c.Search + "%"
		conds = append(conds, SearchCondition{
			Expr: "(projects.title ILIKE ? OR projects.description ILIKE ?)",
			Args: []interface{}{pattern, pattern},
		})
	}
	if c.Category != "" {
		conds = append(conds, SearchCondition{
			Expr: "projects.category = ?",
			Args: []interface{}{c.Category},
		})
	}
	if c.BudgetMin != nil {
		conds = append(conds, SearchCondition{
			Expr: "projects.budget >= ?",
			Args: []interface{}{*c.BudgetMin},
		})
	}
	if c.BudgetMax != nil {
		conds = append(conds, SearchCondition{
			Expr: "projects.budget <= ?",
			Args: []interface{}{*c.BudgetMax},
		})
	}
	if len(c.Skills) > 0 {
		conds = append(conds, SearchCondition{
			Expr: "EXISTS (SELECT 1 FROM jsonb_array_elements_text(projects.skills_required) AS skill WHERE skill IN ?)",
			Args: []interface{}{c.Skills},
		})
	}
	if c.EmployerID != "" {
		conds = append(conds, SearchCondition{
			Expr: "projects.employer_id = ?",
			Args: []interface{}{c.EmployerID},
		})
	} else if c.Status != "" {
		conds = append(conds, SearchCondition{
			Expr: "projects.status = ?",
			Args: []interface{}{c.Status},
		})
	}
	return conds
}
