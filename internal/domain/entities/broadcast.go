package entities

// BroadcastPayload is the word-of-the-day delivered to one subscriber.
type BroadcastPayload struct {
	Level string
	Word  Word
}

// BroadcastReport summarizes a single broadcast run.
type BroadcastReport struct {
	RunID       string // run ID used in logs
	Subscribers int    // number of subscribers at the start of the run
	Sent        int    // messages delivered
	Failed      int    // subscribers whose delivery failed
}
