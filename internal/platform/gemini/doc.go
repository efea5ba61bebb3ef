// Package gemini implements generation.Model on top of Google's Gemini API
// using the google.golang.org/genai client.
//
// This package is an infrastructure adapter in the hexagonal architecture.
// It translates generation.Request values into GenerateContent calls,
// converting the declared response schema, enabling the Google Maps
// grounding tool when asked, and mapping failures onto the sentinel errors
// of the generation package:
//
//   - safety blocks become generation.ErrContentBlocked
//   - responses without candidates become generation.ErrInvalidResponse
//   - rate limits, 5xx responses, network errors and cancellation become
//     generation.ErrTransientFailure
//   - other API rejections become generation.ErrGenerationFailed
//
// Each Generate call performs exactly one request. There are no retries.
package gemini
