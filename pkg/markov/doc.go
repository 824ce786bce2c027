/*
Package markov provides the statistical half of the quatrain engine: a
tokenizer, an order-k context table built from seed text, and a line
generator that random-walks that table with a bounded number of retries.

Models are plain in-memory values built per request. Candidate lists keep
duplicates, so a continuation seen twice is twice as likely to be drawn.
All randomness flows through a random.Source so that callers can make
generation reproducible.
*/
package markov
