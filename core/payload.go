package core

// Payload is the message argument of a log call: either Text or Fields.
// The set of implementations is closed.
type Payload interface {
	payload()
}

// Text is a plain message. It is recorded under the "msg" key.
type Text string

// Fields is a structured message. Its keys are spread into the top level
// of the record instead of being nested under "msg".
type Fields []Field

func (Text) payload()   {}
func (Fields) payload() {}
