package osinfo

import (
	"fmt"
	"runtime"

	"github.com/AvengeMedia/dankpaper/internal/errdefs"
)

type OSInfo struct {
	Distribution string
	Version      string
	VersionID    string
	PrettyName   string
	Architecture string
}

var getOsFunc = getGoos
var getArchFunc = getGoarch

func getGoos() string {
	return runtime.GOOS
}

func getGoarch() string {
	return runtime.GOARCH
}

func GetOSInfo() (*OSInfo, error) {
	if getOsFunc() != "linux" {
		return nil, errdefs.NewCustomError(errdefs.ErrTypeNotLinux, fmt.Sprintf("Only linux is supported, but I found %s", runtime.GOOS))
	}

	info := &OSInfo{
		Architecture: getArchFunc(),
	}

	if err := detectLinuxDistro(info); err != nil {
		return nil, err
	}

	return info, nil
}
