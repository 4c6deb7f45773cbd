package hotkeys

// Property names every dispatch unit understands.
const (
	PropKeyMap    = "keyMap"
	PropHandlers  = "handlers"
	PropComponent = "component"
)

// ComponentPassthrough selects the dispatch unit's non-visual container
// mode: the target's view is emitted untouched.
const ComponentPassthrough = "passthrough"

// Props is the property bag handed to a dispatch unit. Beyond the well-known
// entries above it may carry arbitrary dispatcher-specific configuration.
type Props map[string]any

// DispatchFactory instantiates the dispatch unit around a target. The
// dispatch unit matches key input against props[PropKeyMap], invokes the
// matching callback from props[PropHandlers], and forwards every message it
// does not consume to the target unchanged.
type DispatchFactory func(props Props, target Unit) Unit
