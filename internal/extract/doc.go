// Package extract turns raw outline bodies into typed slide payloads.
//
// Every extractor is total: an empty body yields an empty result and malformed
// input (an unterminated fence, a bad image spec) is dropped rather than
// reported, so a single sloppy slide never fails a whole build.
package extract
