package constants

const (
	// ContainerComponent is the nested component whose invocations receive
	// the callback.
	ContainerComponent = "SlideContainer"

	// CallbackProp is the optional prop injected into every slide component.
	CallbackProp = "onNavigateHome"

	// PropsSuffix is appended to a component name to form its props interface.
	PropsSuffix = "Props"

	// DefaultExtension is the source file extension of slide components.
	DefaultExtension = ".tsx"

	// DefaultBasePath is where the presentation slides live.
	DefaultBasePath = "/root/src/app/components/presentation"
)
