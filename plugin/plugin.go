package plugin

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/kwonoj/tauri-specta/app"
	"github.com/kwonoj/tauri-specta/event"
	"github.com/kwonoj/tauri-specta/schema"
)

// Validation errors.
var (
	// ErrMissingName is returned when a plugin is constructed without a name.
	ErrMissingName = errors.New("plugin: name is required")

	// ErrInvalidName is returned when a plugin name is not lowercase
	// alphanumeric-with-hyphens. The pattern excludes the wire-name
	// separator, which keeps wire-names globally unique.
	ErrInvalidName = errors.New("plugin: name must be lowercase alphanumeric with hyphens")
)

// namePattern validates plugin names.
var namePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*[a-z0-9]$|^[a-z]$`)

// Plugin is a named namespace of events. Construct with New; attach at most
// once.
type Plugin struct {
	id       event.PluginID
	attached bool
}

// New creates a plugin with the given name.
func New(name string) (*Plugin, error) {
	if name == "" {
		return nil, ErrMissingName
	}
	if !namePattern.MatchString(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return &Plugin{id: event.PluginID(name)}, nil
}

// ID returns the plugin's identifier.
func (p *Plugin) ID() event.PluginID {
	return p.id
}

// Bindings is the data handed to UI-side binding generation after an
// attach: one entry per event plus the shared type map.
type Bindings struct {
	// Plugin is the namespace the events were attached under.
	Plugin event.PluginID

	// Events holds each event's logical name and payload schema, in
	// registration order.
	Events []schema.EventDataType

	// Types is the shared schema map across all of the plugin's events.
	Types *schema.TypeMap
}

// Attach collects the plugin's event types, merges the collection into the
// process-wide registry under the plugin's identifier, and returns the
// schema data for binding generation. Attaching twice, or attaching an
// event type some other collection already owns, panics: both are
// setup-time contract violations.
func (p *Plugin) Attach(m app.Manager, events ...event.Registrant) Bindings {
	if p.attached {
		panic(fmt.Sprintf("plugin: %s attached twice", p.id))
	}

	collection, dataTypes, types := event.Collect(events...)
	event.GetOrManage(m).Merge(collection, p.id)
	p.attached = true

	return Bindings{Plugin: p.id, Events: dataTypes, Types: types}
}

// AttachHost attaches events owned by the host application itself: their
// wire-names are the logical names, unprefixed.
func AttachHost(m app.Manager, events ...event.Registrant) Bindings {
	collection, dataTypes, types := event.Collect(events...)
	event.GetOrManage(m).Merge(collection, event.Host)

	return Bindings{Plugin: event.Host, Events: dataTypes, Types: types}
}
