package example

type WorkspaceRole string

const (
	WorkspaceRoleOwner  WorkspaceRole = "owner"
	WorkspaceRoleViewer WorkspaceRole = "viewer"
)

type MembershipStatus string

const (
	MembershipStatusInvited MembershipStatus = "invited"
)

type ComplianceStatus string

const (
	ComplianceStatusPass ComplianceStatus = "pass"
)

type WorkspaceMember struct {
	Email  string
	Role   WorkspaceRole
	Status MembershipStatus
}

type WorkspaceRun struct {
	ComplianceStatus ComplianceStatus
}

func bad() {
	m := &WorkspaceMember{}
	m.Role = "superuser" // want "enum field Role assigned string literal"

	r := &WorkspaceRun{}
	r.ComplianceStatus = "maybe" // want "enum field ComplianceStatus assigned string literal"

	_ = WorkspaceMember{
		Email:  "ada@acme.io",
		Status: "pending", // want "enum field Status set from string literal"
	}
}

func good() {
	m := &WorkspaceMember{Email: "ada@acme.io"}
	m.Role = WorkspaceRoleOwner // OK: using constant

	r := &WorkspaceRun{ComplianceStatus: ComplianceStatusPass}
	_ = r

	_ = map[WorkspaceRole]int{"owner": 1}
}

func alsoGood() {
	// OK: Variable, not literal
	status := MembershipStatusInvited
	m := &WorkspaceMember{Role: WorkspaceRoleViewer, Status: status}
	_ = m
}
