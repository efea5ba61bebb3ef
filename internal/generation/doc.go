// Package generation defines the boundary between Timension and the large
// language model that writes its content. The Model interface takes a
// natural-language prompt, an optional JSON schema the answer must follow,
// and a flag requesting map grounding; it returns the raw text plus any map
// citations. Adapters (Gemini) live under internal/platform.
package generation
