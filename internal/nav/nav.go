package nav

import "fmt"

// Stack is the top-level navigation stack.
type Stack string

// Stacks.
const (
	StackAuth Stack = "auth"
	StackApp  Stack = "app"
)

// Screen is a destination the user can open.
type Screen string

// Screens.
const (
	ScreenLogin    Screen = "login"
	ScreenHome     Screen = "home"
	ScreenProducts Screen = "products"
	ScreenSettings Screen = "settings"
)

// SessionState is satisfied by the auth store.
type SessionState interface {
	LoggedIn() bool
}

// Route picks the stack: the app is only reachable with a session.
func Route(s SessionState) Stack {
	if s != nil && s.LoggedIn() {
		return StackApp
	}
	return StackAuth
}

// Tabs returns the app screens in tab order.
func Tabs() []Screen {
	return []Screen{ScreenHome, ScreenProducts, ScreenSettings}
}

// Parse validates a screen name.
func Parse(name string) (Screen, error) {
	switch s := Screen(name); s {
	case ScreenLogin, ScreenHome, ScreenProducts, ScreenSettings:
		return s, nil
	}
	return "", fmt.Errorf("unknown screen %q", name)
}

// Resolve returns the screen actually shown when target is requested.
// Without a session every app screen resolves to the login screen; with one,
// the login screen resolves to home.
func Resolve(s SessionState, target Screen) Screen {
	switch Route(s) {
	case StackApp:
		if target == ScreenLogin {
			return ScreenHome
		}
		return target
	default:
		return ScreenLogin
	}
}
