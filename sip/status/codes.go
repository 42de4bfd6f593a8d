package status

// Code is a numeric response status code.
type Code uint16

// SIP status codes as registered with IANA.
// See: https://www.iana.org/assignments/sip-parameters/sip-parameters.xhtml#sip-parameters-7
const (
	Trying                Code = 100
	Ringing               Code = 180
	CallIsBeingForwarded  Code = 181
	Queued                Code = 182
	SessionProgress       Code = 183
	EarlyDialogTerminated Code = 199

	OK             Code = 200
	Accepted       Code = 202
	NoNotification Code = 204

	MultipleChoices    Code = 300
	MovedPermanently   Code = 301
	MovedTemporarily   Code = 302
	UseProxy           Code = 305
	AlternativeService Code = 380

	BadRequest                   Code = 400
	Unauthorized                 Code = 401
	PaymentRequired              Code = 402
	Forbidden                    Code = 403
	NotFound                     Code = 404
	MethodNotAllowed             Code = 405
	NotAcceptable                Code = 406
	ProxyAuthRequired            Code = 407
	RequestTimeout               Code = 408
	Conflict                     Code = 409
	Gone                         Code = 410
	LengthRequired               Code = 411
	ConditionalRequestFailed     Code = 412
	RequestEntityTooLarge        Code = 413
	RequestURITooLong            Code = 414
	UnsupportedMediaType         Code = 415
	UnsupportedURIScheme         Code = 416
	UnknownResourcePriority      Code = 417
	BadExtension                 Code = 420
	ExtensionRequired            Code = 421
	SessionIntervalTooSmall      Code = 422
	IntervalTooBrief             Code = 423
	BadLocationInformation       Code = 424
	UseIdentityHeader            Code = 428
	ProvideReferrerIdentity      Code = 429
	AnonymityDisallowed          Code = 433
	BadIdentityInfo              Code = 436
	UnsupportedCertificate       Code = 437
	InvalidIdentityHeader        Code = 438
	FirstHopLacksOutboundSupport Code = 439
	MaxBreadthExceeded           Code = 440
	BadInfoPackage               Code = 469
	ConsentNeeded                Code = 470
	TemporarilyUnavailable       Code = 480
	CallTransactionDoesNotExist  Code = 481
	LoopDetected                 Code = 482
	TooManyHops                  Code = 483
	AddressIncomplete            Code = 484
	Ambiguous                    Code = 485
	BusyHere                     Code = 486
	RequestTerminated            Code = 487
	NotAcceptableHere            Code = 488
	BadEvent                     Code = 489
	RequestPending               Code = 491
	Undecipherable               Code = 493
	SecurityAgreementRequired    Code = 494

	ServerInternalError Code = 500
	NotImplemented      Code = 501
	BadGateway          Code = 502
	ServiceUnavailable  Code = 503
	ServerTimeout       Code = 504
	VersionNotSupported Code = 505
	MessageTooLarge     Code = 513
	PreconditionFailure Code = 580

	BusyEverywhere        Code = 600
	Decline               Code = 603
	DoesNotExistAnywhere  Code = 604
	NotAcceptableAnywhere Code = 606
	Unwanted              Code = 607
)

// Text returns the reason phrase of the status code. It returns the empty string if the
// code is unknown.
func Text(code Code) string {
	switch code {
	case Trying:
		return "Trying"
	case Ringing:
		return "Ringing"
	case CallIsBeingForwarded:
		return "Call is Being Forwarded"
	case Queued:
		return "Queued"
	case SessionProgress:
		return "Session Progress"
	case EarlyDialogTerminated:
		return "Early Dialog Terminated"
	case OK:
		return "OK"
	case Accepted:
		return "Accepted"
	case NoNotification:
		return "No Notification"
	case MultipleChoices:
		return "Multiple Choices"
	case MovedPermanently:
		return "Moved Permanently"
	case MovedTemporarily:
		return "Moved Temporarily"
	case UseProxy:
		return "Use Proxy"
	case AlternativeService:
		return "Alternative Service"
	case BadRequest:
		return "Bad Request"
	case Unauthorized:
		return "Unauthorized"
	case PaymentRequired:
		return "Payment Required"
	case Forbidden:
		return "Forbidden"
	case NotFound:
		return "Not Found"
	case MethodNotAllowed:
		return "Method Not Allowed"
	case NotAcceptable:
		return "Not Acceptable"
	case ProxyAuthRequired:
		return "Proxy Authentication Required"
	case RequestTimeout:
		return "Request Timeout"
	case Conflict:
		return "Conflict"
	case Gone:
		return "Gone"
	case LengthRequired:
		return "Length Required"
	case ConditionalRequestFailed:
		return "Conditional Request Failed"
	case RequestEntityTooLarge:
		return "Request Entity Too Large"
	case RequestURITooLong:
		return "Request-URI Too Long"
	case UnsupportedMediaType:
		return "Unsupported Media Type"
	case UnsupportedURIScheme:
		return "Unsupported URI Scheme"
	case UnknownResourcePriority:
		return "Unknown Resource-Priority"
	case BadExtension:
		return "Bad Extension"
	case ExtensionRequired:
		return "Extension Required"
	case SessionIntervalTooSmall:
		return "Session Interval Too Small"
	case IntervalTooBrief:
		return "Interval Too Brief"
	case BadLocationInformation:
		return "Bad Location Information"
	case UseIdentityHeader:
		return "Use Identity Header"
	case ProvideReferrerIdentity:
		return "Provide Referrer Identity"
	case AnonymityDisallowed:
		return "Anonymity Disallowed"
	case BadIdentityInfo:
		return "Bad Identity-Info"
	case UnsupportedCertificate:
		return "Unsupported Certificate"
	case InvalidIdentityHeader:
		return "Invalid Identity Header"
	case FirstHopLacksOutboundSupport:
		return "First Hop Lacks Outbound Support"
	case MaxBreadthExceeded:
		return "Max-Breadth Exceeded"
	case BadInfoPackage:
		return "Bad Info Package"
	case ConsentNeeded:
		return "Consent Needed"
	case TemporarilyUnavailable:
		return "Temporarily Unavailable"
	case CallTransactionDoesNotExist:
		return "Call/Transaction Does Not Exist"
	case LoopDetected:
		return "Loop Detected"
	case TooManyHops:
		return "Too Many Hops"
	case AddressIncomplete:
		return "Address Incomplete"
	case Ambiguous:
		return "Ambiguous"
	case BusyHere:
		return "Busy Here"
	case RequestTerminated:
		return "Request Terminated"
	case NotAcceptableHere:
		return "Not Acceptable Here"
	case BadEvent:
		return "Bad Event"
	case RequestPending:
		return "Request Pending"
	case Undecipherable:
		return "Undecipherable"
	case SecurityAgreementRequired:
		return "Security Agreement Required"
	case ServerInternalError:
		return "Server Internal Error"
	case NotImplemented:
		return "Not Implemented"
	case BadGateway:
		return "Bad Gateway"
	case ServiceUnavailable:
		return "Service Unavailable"
	case ServerTimeout:
		return "Server Time-out"
	case VersionNotSupported:
		return "Version Not Supported"
	case MessageTooLarge:
		return "Message Too Large"
	case PreconditionFailure:
		return "Precondition Failure"
	case BusyEverywhere:
		return "Busy Everywhere"
	case Decline:
		return "Decline"
	case DoesNotExistAnywhere:
		return "Does Not Exist Anywhere"
	case NotAcceptableAnywhere:
		return "Not Acceptable"
	case Unwanted:
		return "Unwanted"
	default:
		return ""
	}
}
