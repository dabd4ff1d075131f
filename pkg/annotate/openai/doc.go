// Package openai extracts triples with an OpenAI-compatible chat model.
//
// The text is split into sentences locally and sent as a numbered list. The
// model answers with structured output constrained by a JSON schema derived
// from the response types; answers that are not valid JSON are repaired
// before decoding. Returned words are mapped back to their 1-based position
// in the sentence to form "word-index" labels.
//
// Any endpoint speaking the chat completions API works (set BaseURL for local
// servers). Server errors, rate limits and transport failures are retried
// with backoff; other API errors fail immediately with ANNOTATION_FAILED.
package openai
