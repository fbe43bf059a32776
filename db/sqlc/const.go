package db

// Bin lifecycle statuses
const (
	BinStatusPending   = "pending"
	BinStatusReady     = "ready"
	BinStatusCollected = "collected"
	BinStatusCanceled  = "canceled"
)

// Waste categories
const (
	WasteCategoryOrganic = "organic"
	WasteCategoryPlastic = "plastic"
	WasteCategoryMetal   = "metal"
	WasteCategoryPaper   = "paper"
	WasteCategoryGlass   = "glass"
	WasteCategoryOther   = "other"
)

// Route lifecycle statuses
const (
	RouteStatusPlanned    = "planned"
	RouteStatusInProgress = "in_progress"
	RouteStatusCompleted  = "completed"
	RouteStatusCancelled  = "cancelled"
)

// Request lifecycle statuses
const (
	RequestStatusPending    = "pending"
	RequestStatusApproved   = "approved"
	RequestStatusRejected   = "rejected"
	RequestStatusScheduled  = "scheduled"
	RequestStatusInProgress = "in_progress"
	RequestStatusCompleted  = "completed"
	RequestStatusCancelled  = "cancelled"
)

// Payment bill statuses
const (
	BillStatusPending = "pending"
	BillStatusPaid    = "paid"
	BillStatusOverdue = "overdue"
)

// Truck statuses
const (
	TruckStatusAvailable   = "available"
	TruckStatusOnRoute     = "on_route"
	TruckStatusMaintenance = "maintenance"
)
