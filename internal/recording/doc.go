// Package recording captures one spoken attempt: it holds a microphone
// capture and a streaming recognizer open together, decides from recognizer
// activity when the speaker has finished, absorbs transient recognizer
// glitches, and hands the final transcript and audio to the caller.
//
// The lifecycle is Idle → AwaitingPermission → Listening → Finalizing →
// Scored | Cancelled | FatalError. Both handles are released on every exit
// path before the OnEnded callbacks run.
package recording
