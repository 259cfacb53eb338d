// Package audio drives DFPlayer-Mini and Catalex compatible audio modules.
package audio

// A Module owns the receive side of the link and the single reply deadline.
// It is polled: each Update drains the bytes already received, delivers
// every complete frame to the Listener and to the bring-up state machine,
// and then checks the deadline once. An expired deadline is reported to the
// Listener as ErrTimedOut, and the bring-up step waiting on it treats it as
// a failed request. OnReady and OnBringUpFailed are called once bring-up has
// stopped, so a callback may send a command or Reset the module.
//
// Bring-up starts with Reset and walks through:
//
//	resetting -> getting-version -> checking-usb-file-count
//	  -> selecting-usb | checking-sd-file-count -> selecting-sd
//	  -> checking-folder-count -> none
//
// Only one request is outstanding at a time. Commands are not queued, so
// callers should wait until Busy returns false before sending the next one.
