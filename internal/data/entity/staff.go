package entity

// StaffRole is recorded on staff members but never enforced anywhere.
type StaffRole string

const (
	StaffRoleCashier       StaffRole = "cashier"
	StaffRoleProjectionist StaffRole = "projectionist"
	StaffRoleManager       StaffRole = "manager"
	StaffRoleTechnician    StaffRole = "technician"
)

type Staff struct {
	ID           int64     `db:"id"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Role         StaffRole `db:"role"`
}
