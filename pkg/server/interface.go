/*
Package server implements msgpack IPC for letter-search queries.

The protocol is binary msgpack over stdin/stdout, one request processed at
a time, synchronously. Each message carries an ID the client uses to pair
responses with requests.

A query request:

	{"id": "q_001", "l": "carbont", "re": "car.*", "n": 24}

The server responds with matches ranked by score:

	{"id": "q_001", "m": [{"w": "carbon", "s": 10}, {"w": "cart", "s": 6}], "c": 2, "t": 3}

An invalid regular expression produces an error response instead; the
process keeps serving:

	{"id": "q_001", "e": "invalid pattern: ...", "c": 400}
*/
package server

// QueryRequest asks for every word spellable from the letters, optionally
// filtered by a regular expression.
type QueryRequest struct {
	ID      string `msgpack:"id"`
	Letters string `msgpack:"l"`
	Pattern string `msgpack:"re,omitempty"`
	Limit   int    `msgpack:"n,omitempty"`
}

// QueryMatch - one ranked word in a response
type QueryMatch struct {
	Word  string `msgpack:"w"`
	Score int    `msgpack:"s"`
}

// QueryResponse - ranked matches plus timing info
type QueryResponse struct {
	ID        string       `msgpack:"id"`
	Matches   []QueryMatch `msgpack:"m"`
	Count     int          `msgpack:"c"`
	TimeTaken int64        `msgpack:"t"`
}

// QueryError holds basic error information for failed requests
type QueryError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
