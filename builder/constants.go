// Package builder defines shared constants used by the topology constructors,
// keeping attribute vocabularies and link defaults in one place.
package builder

//-----------------------------------------------------------------------------
// Constructor Method Names
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodRing is the canonical name for the Ring constructor.
	MethodRing = "Ring"
	// MethodFullMesh is the canonical name for the FullMesh constructor.
	MethodFullMesh = "FullMesh"
	// MethodPartialMesh is the canonical name for the PartialMesh constructor.
	MethodPartialMesh = "PartialMesh"
	// MethodTree is the canonical name for the Tree constructor.
	MethodTree = "Tree"
	// MethodBus is the canonical name for the Bus constructor.
	MethodBus = "Bus"
	// MethodSpineLeaf is the canonical name for the SpineLeaf constructor.
	MethodSpineLeaf = "SpineLeaf"
	// MethodHybrid is the canonical name for the Hybrid constructor.
	MethodHybrid = "Hybrid"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinStarNodes is the smallest star: one hub plus one leaf.
const MinStarNodes = 2

// MinRingNodes is the smallest ring that needs neither loops nor parallel links.
const MinRingNodes = 3

// MinBusNodes is the smallest bus with at least one segment.
const MinBusNodes = 2

// MinTreeNodes is the smallest tree: a lone root.
const MinTreeNodes = 1

// PartialMeshFanout caps how many peers each node samples in a partial mesh.
const PartialMeshFanout = 3

// HostsPerLeaf is the number of servers attached to every leaf in SpineLeaf.
const HostsPerLeaf = 2

// HybridInterconnectCap bounds the core and distribution IDs that take part
// in the core-distribution interconnect of Hybrid.
const HybridInterconnectCap = 2

// DefaultBranchingFactor is the Tree fan-out used by Build and Quick.
const DefaultBranchingFactor = 2

//-----------------------------------------------------------------------------
// Attribute Vocabulary
//-----------------------------------------------------------------------------

// Device types.
const (
	DeviceSwitch      = "switch"
	DeviceHost        = "host"
	DeviceRouter      = "router"
	DeviceServer      = "server"
	DeviceWorkstation = "workstation"
)

// Roles.
const (
	RoleHub      = "hub"
	RoleEndpoint = "endpoint"
	RoleRoot     = "root"
	RoleBranch   = "branch"
	RoleSpine    = "spine"
	RoleLeaf     = "leaf"
	RoleHost     = "host"
)

// Fabric tiers.
const (
	TierSpine  = "spine"
	TierLeaf   = "leaf"
	TierAccess = "access"
)

// Link media.
const (
	LinkEthernet = "ethernet"
	LinkSerial   = "serial"
	LinkCoax     = "coax"
	LinkFiber    = "fiber"
)

// Bandwidths in Mbps and MTUs in bytes.
const (
	Bandwidth100M = 100
	Bandwidth1G   = 1000
	Bandwidth10G  = 10000

	MTUStandard = 1500
	MTUJumbo    = 9000
)

// Hybrid group names with a dedicated sub-topology.
const (
	GroupCore         = "core"
	GroupDistribution = "distribution"
	GroupAccess       = "access"
)

// partialMeshBandwidths is the pool PartialMesh draws link speeds from.
var partialMeshBandwidths = [...]int{Bandwidth100M, Bandwidth1G, Bandwidth10G}
