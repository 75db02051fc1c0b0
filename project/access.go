package project

// Capability is the highest privilege a user holds on a project:
// owner > editor > viewer/commenter > none.
type Capability string

const (
	CapabilityOwner     Capability = "owner"
	CapabilityEditor    Capability = "editor"
	CapabilityViewer    Capability = "viewer"
	CapabilityCommenter Capability = "commenter"
	CapabilityNone      Capability = "none"
)

// CapabilityOf computes the capability of a user on a project. Every
// authorization decision of the service goes through this one function: the
// owner holds all capabilities, a collaborator holds its role, anybody else
// holds none.
func CapabilityOf(userID int, p Project) Capability {
	if p.OwnerID == userID {
		return CapabilityOwner
	}

	for _, c := range p.Collaborators {
		if c.UserID == userID {
			switch c.Role {
			case RoleEditor:
				return CapabilityEditor
			case RoleCommenter:
				return CapabilityCommenter
			default:
				return CapabilityViewer
			}
		}
	}

	return CapabilityNone
}

// CanRead allows reading the project and listing its media.
func (c Capability) CanRead() bool {
	return c != CapabilityNone
}

// CanEditMedia allows creating, mutating and deleting media assets.
func (c Capability) CanEditMedia() bool {
	return c == CapabilityOwner || c == CapabilityEditor
}

// IsOwner allows updating or deleting the project and managing its
// collaborators.
func (c Capability) IsOwner() bool {
	return c == CapabilityOwner
}
