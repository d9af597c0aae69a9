// Package notify is the boundary to the platform notification channel. The
// scheduling engine only ever talks to the Dispatcher interface; delivery
// details (auto-dismiss, click handling) live on the other side of it.
package notify

type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

type Options struct {
	Icon               string
	Tag                string
	RequireInteraction bool
	Silent             bool
}

// Dispatcher delivers notifications to the user.
//
// RequestPermission is idempotent: once a grant or denial has been resolved it
// is returned again without re-prompting. Show is fire-and-forget and must be
// a silent no-op while permission is not granted.
type Dispatcher interface {
	RequestPermission() Permission
	Show(title string, body string, opts Options)
}
