package wspull

// MessageKind discriminates the two delivered message shapes
type MessageKind int

const (
	// KindText is a message carrying a text payload
	KindText MessageKind = iota
	// KindBinary is a message carrying a binary payload
	KindBinary
)

// String returns the string representation of MessageKind
func (k MessageKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// Message is the tagged union delivered by ReadMessage: either a text
// payload (Kind == KindText, Text set) or a binary payload (Kind ==
// KindBinary, Data set). A frame whose wire kind is neither text nor
// binary never produces a Message; it fails the read with a decode error.
type Message struct {
	Kind MessageKind
	Text string
	Data []byte
}

// frame is a raw inbound event as delivered by the transport, not yet
// claimed by any read. It is what sits in the buffered queue and what a
// pending read's promise resolves to.
type frame struct {
	kind    FrameKind
	payload []byte
}
