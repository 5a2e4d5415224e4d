package domain

// ReturnStatus is the lifecycle state of a return.
type ReturnStatus string

const (
	ReturnStatusUnmatched ReturnStatus = "unmatched"
	ReturnStatusPending   ReturnStatus = "pending"
	ReturnStatusMatched   ReturnStatus = "matched"
	ReturnStatusShipped   ReturnStatus = "shipped"
	ReturnStatusCompleted ReturnStatus = "completed"
	ReturnStatusCancelled ReturnStatus = "cancelled"
)

func (s ReturnStatus) String() string { return string(s) }

func (s ReturnStatus) IsValid() bool {
	switch s {
	case ReturnStatusUnmatched, ReturnStatusPending, ReturnStatusMatched,
		ReturnStatusShipped, ReturnStatusCompleted, ReturnStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition can leave the status.
func (s ReturnStatus) IsTerminal() bool {
	return s == ReturnStatusCompleted || s == ReturnStatusCancelled
}

// ReturnType tells whether the return is expected before or after its
// physical inventory is received.
type ReturnType string

const (
	ReturnTypePreReceipt  ReturnType = "pre_receipt"
	ReturnTypePostReceipt ReturnType = "post_receipt"
)

func (t ReturnType) String() string { return string(t) }

func (t ReturnType) IsValid() bool {
	switch t {
	case ReturnTypePreReceipt, ReturnTypePostReceipt:
		return true
	}
	return false
}

// MatchType records which matching strategy resolved a product.
type MatchType string

const (
	MatchTypeASIN       MatchType = "asin"
	MatchTypeFuzzyTitle MatchType = "fuzzy_title"
	MatchTypeILikeTitle MatchType = "ilike_title"
	MatchTypeManual     MatchType = "manual"
)

func (m MatchType) String() string { return string(m) }

func (m MatchType) IsValid() bool {
	switch m {
	case MatchTypeASIN, MatchTypeFuzzyTitle, MatchTypeILikeTitle, MatchTypeManual:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeReturn        EntityType = "RETURN"
	EntityTypeInventoryItem EntityType = "INVENTORY_ITEM"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeReturn, EntityTypeInventoryItem:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate         AuditAction = "CREATE"
	AuditActionUpdate         AuditAction = "UPDATE"
	AuditActionAssignProduct  AuditAction = "ASSIGN_PRODUCT"
	AuditActionMatchInventory AuditAction = "MATCH_INVENTORY"
	AuditActionShip           AuditAction = "SHIP"
	AuditActionComplete       AuditAction = "COMPLETE"
	AuditActionCancel         AuditAction = "CANCEL"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionAssignProduct,
		AuditActionMatchInventory, AuditActionShip, AuditActionComplete, AuditActionCancel:
		return true
	}
	return false
}
