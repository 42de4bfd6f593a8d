package sip

// Methods defined by RFC 3261 and its extensions. Requests aren't limited to them, any token
// is accepted as a method.
const (
	INVITE    = "INVITE"
	ACK       = "ACK"
	BYE       = "BYE"
	CANCEL    = "CANCEL"
	REGISTER  = "REGISTER"
	OPTIONS   = "OPTIONS"
	PRACK     = "PRACK"
	SUBSCRIBE = "SUBSCRIBE"
	NOTIFY    = "NOTIFY"
	PUBLISH   = "PUBLISH"
	INFO      = "INFO"
	REFER     = "REFER"
	MESSAGE   = "MESSAGE"
	UPDATE    = "UPDATE"
)

// Methods lists all the known methods.
var Methods = []string{
	INVITE, ACK, BYE, CANCEL, REGISTER, OPTIONS, PRACK,
	SUBSCRIBE, NOTIFY, PUBLISH, INFO, REFER, MESSAGE, UPDATE,
}

// IsKnown reports whether the method is one of Methods. Methods are case-sensitive.
func IsKnown(method string) bool {
	switch len(method) {
	case 3:
		return method == ACK || method == BYE
	case 4:
		return method == INFO
	case 5:
		return method == PRACK || method == REFER
	case 6:
		return method == INVITE || method == CANCEL || method == NOTIFY || method == UPDATE
	case 7:
		return method == OPTIONS || method == PUBLISH || method == MESSAGE
	case 8:
		return method == REGISTER
	case 9:
		return method == SUBSCRIBE
	}

	return false
}
