// Package productinfo reads product metadata for the running binary. Every
// accessor performs a fresh build-info lookup and reports whether a value
// was found.
package productinfo

import (
	"path"
	"runtime/debug"
)

// Injected at link time, for example:
//
//	go build -ldflags "-X github.com/jask/teakit/productinfo.title=TeaKit"
var (
	title         string
	description   string
	configuration string
	company       string
	product       string
	copyright     string
	trademark     string
	culture       string
	version       string
	fileVersion   string
)

// Title is the injected title, or the base name of the main module path.
func Title() (string, bool) {
	if title != "" {
		return title, true
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Path != "" {
		return path.Base(bi.Main.Path), true
	}
	return "", false
}

func Description() (string, bool) { return injected(description) }

// Configuration is the injected value, or the build tag list the binary was
// compiled with.
func Configuration() (string, bool) {
	if configuration != "" {
		return configuration, true
	}
	return buildSetting("-tags")
}

func Company() (string, bool) { return injected(company) }

// Product is the injected value, or the main module path.
func Product() (string, bool) {
	if product != "" {
		return product, true
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Path != "" {
		return bi.Main.Path, true
	}
	return "", false
}

func Copyright() (string, bool) { return injected(copyright) }

func Trademark() (string, bool) { return injected(trademark) }

func Culture() (string, bool) { return injected(culture) }

// Version is the injected value, or the main module version when the
// toolchain recorded one. go install stamps it; go build leaves "(devel)",
// which reports absent.
func Version() (string, bool) {
	if version != "" {
		return version, true
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		if v := bi.Main.Version; v != "" && v != "(devel)" {
			return v, true
		}
	}
	return "", false
}

// FileVersion is the injected value, or the VCS revision recorded at build
// time.
func FileVersion() (string, bool) {
	if fileVersion != "" {
		return fileVersion, true
	}
	return buildSetting("vcs.revision")
}

func injected(v string) (string, bool) {
	if v == "" {
		return "", false
	}
	return v, true
}

func buildSetting(key string) (string, bool) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	for _, s := range bi.Settings {
		if s.Key == key && s.Value != "" {
			return s.Value, true
		}
	}
	return "", false
}
