package app

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/specialistvlad/checkoutfields/internal/ctxlog"
	"github.com/specialistvlad/checkoutfields/internal/form"
	"github.com/specialistvlad/checkoutfields/internal/model"
	"github.com/specialistvlad/checkoutfields/internal/ordered"
	"github.com/specialistvlad/checkoutfields/internal/registry"
	"github.com/specialistvlad/checkoutfields/internal/sessionstore"
)

// formattedAddressDoc is the input of the formatted-address surface.
type formattedAddressDoc struct {
	Address map[string]string `yaml:"address"`
	Meta    map[string]string `yaml:"meta"`
	Order   bool              `yaml:"order"`
}

// guestCheckoutDoc is the input of the guest-checkout surface.
type guestCheckoutDoc struct {
	LoggedIn bool              `yaml:"logged_in"`
	Data     map[string]string `yaml:"data"`
	Session  map[string]string `yaml:"session"`
}

// variationSummary is one entry of the variations surface output.
type variationSummary struct {
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Target   string `json:"target"`
	Type     string `json:"type"`
	Label    string `json:"label"`
	Position string `json:"position"`
}

// Run applies the configured surface to the input document and writes the
// merged result to the app's output as indented JSON.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.", "surface", a.config.Surface)

	if a.registry.Len() == 0 {
		logger.Warn("No fields registered, the document is returned unchanged.")
	}

	result, err := a.apply()
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s result: %w", a.config.Surface, err)
	}
	if _, err := fmt.Fprintln(a.outW, string(out)); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) apply() (any, error) {
	target := model.Target(a.config.target(string(model.TargetBilling)))

	switch a.config.Surface {
	case SurfaceCheckout:
		groups := form.NewGroups()
		if err := a.readDocument(groups); err != nil {
			return nil, err
		}
		return a.weaver.AddOrderFields(groups), nil

	case SurfaceAddress:
		fields := form.NewFields()
		if err := a.readDocument(fields); err != nil {
			return nil, err
		}
		return a.weaver.AddAddressFields(target, fields, a.config.Country), nil

	case SurfaceAdminUser:
		groups := form.NewGroups()
		if err := a.readDocument(groups); err != nil {
			return nil, err
		}
		return a.weaver.AddCustomerMetaFields(groups), nil

	case SurfaceAdminOrder:
		fields := form.NewFields()
		if err := a.readDocument(fields); err != nil {
			return nil, err
		}
		return a.weaver.AddAdminOrderFields(target, fields), nil

	case SurfacePrivacyCustomer, SurfacePrivacyOrder:
		props := ordered.New[string]()
		if err := a.readDocument(props); err != nil {
			return nil, err
		}
		if a.config.Surface == SurfacePrivacyOrder {
			return a.weaver.PrivacyOrderProps(props), nil
		}
		return a.weaver.PrivacyCustomerProps(props), nil

	case SurfaceAddressFormat:
		formats := ordered.New[string]()
		if err := a.readDocument(formats); err != nil {
			return nil, err
		}
		return a.weaver.LocalisationFormats(formats), nil

	case SurfaceFormattedAddress:
		var doc formattedAddressDoc
		if err := a.readDocument(&doc); err != nil {
			return nil, err
		}
		meta := sessionstore.FromMap(doc.Meta)
		if doc.Order {
			return a.weaver.FormattedOrderAddress(target, doc.Address, meta), nil
		}
		return a.weaver.FormattedCustomerAddress(target, doc.Address, meta), nil

	case SurfaceGuestCheckout:
		var doc guestCheckoutDoc
		if err := a.readDocument(&doc); err != nil {
			return nil, err
		}
		session := sessionstore.FromMap(doc.Session)
		a.weaver.CaptureGuestCheckout(doc.LoggedIn, doc.Data, session)
		return session.Snapshot(), nil

	case SurfaceVariations:
		return a.variations(), nil
	}
	return nil, fmt.Errorf("unknown surface %q", a.config.Surface)
}

// readDocument decodes the input document into dst. JSON documents are
// accepted as YAML flow mappings.
func (a *App) readDocument(dst any) error {
	data, err := os.ReadFile(a.config.DocumentPath)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode document %s: %w", a.config.DocumentPath, err)
	}
	return nil
}

func (a *App) variations() []variationSummary {
	filter := registry.Filter{}
	if a.config.Target != "" {
		filter = registry.ForTargets(model.Target(a.config.Target))
	}

	vars := a.registry.QueryVariations(filter, true)
	out := make([]variationSummary, 0, vars.Len())
	for slug, v := range vars.All() {
		out = append(out, variationSummary{
			Slug:     slug,
			Name:     v.Name,
			Target:   string(v.Target),
			Type:     v.Type,
			Label:    v.Label,
			Position: v.Position.String(),
		})
	}
	return out
}
