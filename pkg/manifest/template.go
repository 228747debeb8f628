package manifest

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// DefaultEntries is the recommended script list written by
// WriteTemplate, every entry enabled.
var DefaultEntries = []string{
	"TVSources.zip",
	"YT.lua",
	"beeline-timeshift_ext.lua",
	"beeline-tv.lua",
	"beeline-tv_pls.lua",
	"dropbox.lua",
	"edem-timeshift_ext.lua",
	"filmix.lua",
	"hdrezka.lua",
	"inetcom.lua",
	"inetcom_pls.lua",
	"iviru.lua",
	"kinopoisk.lua",
	"kinopoisk_films-a_pls.lua",
	"kinopoisk_serials-a_pls.lua",
	"mediavitrina.lua",
	"ok.lua",
	"playerjs.lua",
	"psevdotv.bond_007.lua",
	"psevdotv.film_ussr.lua",
	"psevdotv.ivi_kinoteatr.lua",
	"psevdotv.jackie_chan.lua",
	"psevdotv_pls.lua",
	"regions_pls.lua",
	"rutube.lua",
	"rutv.lua",
	"rutv_pls.lua",
	"salomtv.lua",
	"salomtv_pls.lua",
	"smartKZ.lua",
	"smartKZ_pls.lua",
	"telegram.lua",
	"wink-timeshift_ext.lua",
	"wink-tv.lua",
	"wink-tv_pls.lua",
	"yandex+radio_pls.lua",
	"yandex-timeshift_ext.lua",
}

// WriteTemplate writes the recommended manifest to path, one entry per
// line in sorted order.
func WriteTemplate(path string) error {
	entries := make([]string, len(DefaultEntries))
	copy(entries, DefaultEntries)
	sort.Strings(entries)

	content := strings.Join(entries, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write manifest template: %w", err)
	}
	return nil
}
