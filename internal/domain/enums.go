package domain

// FeeType classifies a fee as compulsory or optional for households.
type FeeType string

const (
	FeeTypeMandatory FeeType = "MANDATORY"
	FeeTypeVoluntary FeeType = "VOLUNTARY"
)

func (t FeeType) String() string { return string(t) }

func (t FeeType) IsValid() bool {
	switch t {
	case FeeTypeMandatory, FeeTypeVoluntary:
		return true
	}
	return false
}

// UserRole represents the authorization tier of a user.
type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleUser  UserRole = "USER"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleUser:
		return true
	}
	return false
}

// IsAdmin returns true if the role is ADMIN.
func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }

// EntityType identifies the kind of ledger entity (notifications, audit log).
type EntityType string

const (
	EntityTypeFee       EntityType = "FEE"
	EntityTypeHousehold EntityType = "HOUSEHOLD"
	EntityTypePayment   EntityType = "PAYMENT"
	EntityTypeUser      EntityType = "USER"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeFee, EntityTypeHousehold, EntityTypePayment, EntityTypeUser:
		return true
	}
	return false
}

// IsNotifiable reports whether notifications may reference this entity type.
func (e EntityType) IsNotifiable() bool {
	switch e {
	case EntityTypeFee, EntityTypeHousehold, EntityTypePayment:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate     AuditAction = "CREATE"
	AuditActionUpdate     AuditAction = "UPDATE"
	AuditActionDelete     AuditAction = "DELETE"
	AuditActionActivate   AuditAction = "ACTIVATE"
	AuditActionDeactivate AuditAction = "DEACTIVATE"
	AuditActionVerify     AuditAction = "VERIFY"
	AuditActionUnverify   AuditAction = "UNVERIFY"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete,
		AuditActionActivate, AuditActionDeactivate,
		AuditActionVerify, AuditActionUnverify:
		return true
	}
	return false
}
