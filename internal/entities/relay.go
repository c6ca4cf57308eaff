package entities

type RelayState string

const (
	RelayPairing      RelayState = "pairing"
	RelayReady        RelayState = "ready"
	RelayDisconnected RelayState = "disconnected"
	RelayAuthFailed   RelayState = "auth-failed"
)

func (s RelayState) String() string {
	return string(s)
}

// RelaySession is the messaging relay's current pairing state. QR carries the
// pairing code while the state is RelayPairing, empty otherwise.
type RelaySession struct {
	State RelayState
	QR    string
}

type RelayReceipt struct {
	MessageID string
}
