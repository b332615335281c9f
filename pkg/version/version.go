package version

import "runtime/debug"

type Info struct {
	Commit string `json:"commit"`
	Time   string `json:"time"`
}

// Get reads the vcs stamp embedded by the go toolchain. Fields stay
// empty when built outside a checkout.
func Get() Info {
	v := Info{}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				v.Commit = setting.Value
			case "vcs.time":
				v.Time = setting.Value
			}
		}
	}
	return v
}
