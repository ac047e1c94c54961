package room

type Type string

const (
	TypeStandard     Type = "standard"
	TypeDeluxe       Type = "deluxe"
	TypePresidential Type = "presidential"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeStandard, TypeDeluxe, TypePresidential:
		return true
	default:
		return false
	}
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidRoomType
	}
	return t, nil
}

type Status string

const (
	StatusAvailable     Status = "available"
	StatusOccupied      Status = "occupied"
	StatusReserved      Status = "reserved"
	StatusMaintenance   Status = "maintenance"
	StatusCleaning      Status = "cleaning"
	StatusNeedsCleaning Status = "needs_cleaning"
	StatusOutOfOrder    Status = "out_of_order"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusReserved, StatusMaintenance,
		StatusCleaning, StatusNeedsCleaning, StatusOutOfOrder:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type CleaningStatus string

const (
	CleaningClean               CleaningStatus = "clean"
	CleaningDirty               CleaningStatus = "dirty"
	CleaningInProgress          CleaningStatus = "cleaning"
	CleaningMaintenanceRequired CleaningStatus = "maintenance_required"
)

func (s CleaningStatus) String() string {
	return string(s)
}

func (s CleaningStatus) IsValid() bool {
	switch s {
	case CleaningClean, CleaningDirty, CleaningInProgress, CleaningMaintenanceRequired:
		return true
	default:
		return false
	}
}

func NewCleaningStatus(s string) (CleaningStatus, error) {
	cs := CleaningStatus(s)
	if !cs.IsValid() {
		return "", ErrInvalidCleaningStatus
	}
	return cs, nil
}

// Condition is the state of the room as reported by staff at check-out.
type Condition string

const (
	ConditionGood             Condition = "good"
	ConditionDamaged          Condition = "damaged"
	ConditionNeedsCleaning    Condition = "needs_cleaning"
	ConditionNeedsMaintenance Condition = "needs_maintenance"
)

func (c Condition) String() string {
	return string(c)
}

func (c Condition) IsValid() bool {
	switch c {
	case ConditionGood, ConditionDamaged, ConditionNeedsCleaning, ConditionNeedsMaintenance:
		return true
	default:
		return false
	}
}

func NewCondition(s string) (Condition, error) {
	c := Condition(s)
	if !c.IsValid() {
		return "", ErrInvalidCondition
	}
	return c, nil
}
