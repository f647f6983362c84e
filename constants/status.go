package constants

// User roles
const (
	RoleStaff = 0
	RoleAdmin = 1
)

// User status
const (
	UserStatusInactive = 0
	UserStatusActive   = 1
)

// Gender
const (
	GenderMale   = 1
	GenderFemale = 2
)

// Student status
const (
	StudentStatusActive    = 1
	StudentStatusInactive  = 2
	StudentStatusCompleted = 3
	StudentStatusDropped   = 4
	StudentStatusSuspended = 5
)

// Hostel type
const (
	HostelTypeBoys  = 1
	HostelTypeGirls = 2
)

// Hostel status
const (
	HostelStatusActive      = 1
	HostelStatusMaintenance = 2
	HostelStatusClosed      = 3
)

// Room status
const (
	RoomStatusAvailable   = 1
	RoomStatusOccupied    = 2
	RoomStatusMaintenance = 3
	RoomStatusReserved    = 4
)

// Fee status
const (
	FeeStatusPending = 0
	FeeStatusPaid    = 1
	FeeStatusOverdue = 2
	FeeStatusWaived  = 3
)

// Fee type
const (
	FeeTypeTuition = 1
	FeeTypeHostel  = 2
	FeeTypeExam    = 3
	FeeTypeLibrary = 4
	FeeTypeOther   = 5
)

// Audit actions
const (
	AuditActionCreate     = "create"
	AuditActionUpdate     = "update"
	AuditActionDelete     = "delete"
	AuditActionAllocate   = "allocate"
	AuditActionDeallocate = "deallocate"
	AuditActionCollect    = "collect"
)

// Audit modules
const (
	AuditModuleStudent = "student"
	AuditModuleHostel  = "hostel"
	AuditModuleFee     = "fee"
	AuditModuleExam    = "exam"
	AuditModuleAuth    = "auth"
)
