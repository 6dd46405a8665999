package browscap_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/browscap/pkg/browscap"
	"github.com/dmitrymomot/browscap/pkg/logger"
)

const (
	androidChromeUA = "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.6099.144 Mobile Safari/537.36"
	windowsChromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.6099.109 Safari/537.36"
	googlebotUA     = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
)

// fullINI is a trimmed full-variant file with a catch-all record at the end.
const fullINI = `;;; Provided courtesy of https://browscap.org/
[GJK_Browscap_Version]
Version=6001008
Released="Tue, 12 Mar 2024 09:00:00 +0000"
Format=php
Type=FULL

[DefaultProperties]
Comment="DefaultProperties"
Browser="DefaultProperties"
Version="0.0"
MajorVer=0
MinorVer=0
Platform="unknown"
Device_Type="unknown"
isMobileDevice="false"
isTablet="false"
Crawler="false"
Cookies="false"
JavaScript="false"

[Chrome Generic]
Parent="DefaultProperties"
Comment="Chrome Generic"
Browser="Chrome"
Browser_Maker="Google Inc"
Cookies="true"
JavaScript="true"

[Mozilla/5.0 (*Linux*Android*) AppleWebKit* (KHTML, like Gecko)*Chrome/120.0*Mobile Safari*]
Parent="Chrome Generic"
Version="120.0"
MajorVer=120
MinorVer=0
Platform="Android"
Device_Type="Mobile Phone"
isMobileDevice="true"

[Mozilla/5.0 (*Windows NT 10.0*Win64? x64*) AppleWebKit* (KHTML, like Gecko)*Chrome/120.0*Safari*]
Parent="Chrome Generic"
Version="120.0"
MajorVer=120
Platform="Win10"
Platform_Bits=64
Device_Type="Desktop"

[Mozilla/5.0 (compatible; Googlebot/2.?; +http://www.google.com/bot.html)]
Parent="DefaultProperties"
Browser="Googlebot"
Crawler="true"

[*]
Parent="DefaultProperties"
Comment="Default Browser"
Browser="Default Browser"
`

// twoTierINI declares no file type and has no catch-all record.
const twoTierINI = `[Default Browser]
Platform=Unknown
isMobileDevice=false

[Mozilla/5.0* Mobile*]
Parent="Default Browser"
isMobileDevice=true
`

func openDB(t testing.TB, data string) *browscap.DB {
	t.Helper()
	db, err := browscap.Open(strings.NewReader(data), browscap.WithLogger(logger.Nop()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}
