package datamodel

// Privilege identifies the minimum ACL privilege required for an operation.
type Privilege int

const (
	// PrivilegeView allows reading non-sensitive data.
	PrivilegeView Privilege = iota + 1

	// PrivilegeOperate allows normal device operation.
	PrivilegeOperate

	// PrivilegeManage allows device configuration.
	PrivilegeManage

	// PrivilegeAdminister allows full administrative access.
	PrivilegeAdminister
)

// String returns a human-readable name for the privilege.
func (p Privilege) String() string {
	switch p {
	case PrivilegeView:
		return "View"
	case PrivilegeOperate:
		return "Operate"
	case PrivilegeManage:
		return "Manage"
	case PrivilegeAdminister:
		return "Administer"
	default:
		return "Unknown"
	}
}

// CommandQuality contains command quality flags.
type CommandQuality uint32

const (
	// CmdQualityFabricScoped indicates the command is fabric-scoped.
	CmdQualityFabricScoped CommandQuality = 1 << iota

	// CmdQualityTimed indicates the command requires a timed interaction.
	CmdQualityTimed
)

// CommandEntry describes a command's metadata.
// Used for discovery and access validation.
type CommandEntry struct {
	// ID is the command identifier.
	ID CommandID

	// Quality contains the command quality flags.
	Quality CommandQuality

	// InvokePrivilege is the minimum privilege required to invoke this command.
	InvokePrivilege Privilege
}

// HasQuality returns true if the command has the specified quality flag(s).
func (c *CommandEntry) HasQuality(q CommandQuality) bool {
	return c.Quality&q != 0
}

// RequiresTimed returns true if this command requires timed interaction.
func (c *CommandEntry) RequiresTimed() bool {
	return c.HasQuality(CmdQualityTimed)
}

// FindCommand searches a command list for a specific command ID.
// Returns nil if not found.
func FindCommand(list []CommandEntry, id CommandID) *CommandEntry {
	for i := range list {
		if list[i].ID == id {
			return &list[i]
		}
	}
	return nil
}
