package model

// Kind classifies component types by the capabilities they expose
type Kind string

const (
	KindTransform Kind = "transform"
	KindBehaviour Kind = "behaviour"
	KindRenderer  Kind = "renderer"
	KindCollider  Kind = "collider"
	KindData      Kind = "data"
)

// Toggleable reports whether components of this kind have an enabled flag
func (k Kind) Toggleable() bool {
	switch k {
	case KindBehaviour, KindRenderer, KindCollider:
		return true
	default:
		return false
	}
}

// kindTable is built once at startup. Types missing from it are treated as
// user scripts, which are behaviours.
var kindTable = map[string]Kind{
	"Transform":     KindTransform,
	"RectTransform": KindTransform,

	"Camera":          KindBehaviour,
	"Light":           KindBehaviour,
	"AudioSource":     KindBehaviour,
	"AudioListener":   KindBehaviour,
	"Animator":        KindBehaviour,
	"Animation":       KindBehaviour,
	"Canvas":          KindBehaviour,
	"CanvasScaler":    KindBehaviour,
	"EventSystem":     KindBehaviour,
	"ParticleSystem":  KindData,
	"Rigidbody":       KindData,
	"Rigidbody2D":     KindData,
	"MeshFilter":      KindData,
	"CanvasRenderer":  KindData,
	"CharacterJoint":  KindData,
	"NavMeshAgent":    KindBehaviour,
	"Terrain":         KindBehaviour,
	"ReflectionProbe": KindBehaviour,

	"MeshRenderer":        KindRenderer,
	"SkinnedMeshRenderer": KindRenderer,
	"SpriteRenderer":      KindRenderer,
	"LineRenderer":        KindRenderer,
	"TrailRenderer":       KindRenderer,

	"BoxCollider":         KindCollider,
	"SphereCollider":      KindCollider,
	"CapsuleCollider":     KindCollider,
	"MeshCollider":        KindCollider,
	"BoxCollider2D":       KindCollider,
	"CircleCollider2D":    KindCollider,
	"TerrainCollider":     KindCollider,
	"CharacterController": KindCollider,
}

// LookupKind returns the kind registered for typeName
func LookupKind(typeName string) Kind {
	if kind, ok := kindTable[typeName]; ok {
		return kind
	}
	return KindBehaviour
}

// ParseKind converts a user supplied kind name, reporting whether it is known
func ParseKind(name string) (Kind, bool) {
	switch k := Kind(name); k {
	case KindTransform, KindBehaviour, KindRenderer, KindCollider, KindData:
		return k, true
	default:
		return "", false
	}
}
