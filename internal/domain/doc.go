// Package domain contains the core photo album model.
//
// The domain is presentation- and filesystem-agnostic: it does not decode images,
// stat files, or render anything. Adapters validate input and build Photo values;
// the UI reads snapshots and subscribes to change notifications.
package domain
