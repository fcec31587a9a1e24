package email

const (
	subjectOfferFmt   = "Offer for Your Property at %s"
	subjectCounterFmt = "Counter Offer Received for %s"
)
