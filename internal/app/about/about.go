package about

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/obision/example-go/internal/app"
	"github.com/obision/example-go/internal/locale"
)

// Version is the application version. It is overridden at link time.
var Version = "git"

// Show shows the about dialog.
func Show(ctx context.Context) *gtk.AboutDialog {
	about := gtk.NewAboutDialog()
	about.SetTransientFor(app.GTKWindowFromContext(ctx))
	about.SetModal(true)
	about.SetProgramName(locale.S(ctx, "Obision Example"))
	about.SetLogoIconName("applications-development-symbolic")
	about.SetVersion(Version)
	about.SetWebsite("https://github.com/obision/example-go")
	about.SetWebsiteLabel(locale.S(ctx, "Source code"))
	about.SetLicenseType(gtk.LicenseGPL30)
	about.SetAuthors([]string{"Obision contributors"})
	about.Show()

	return about
}
