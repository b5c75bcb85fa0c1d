package ini

import (
	"fmt"

	"github.com/joshuapare/inikit/internal/table"
	"github.com/joshuapare/inikit/pkg/types"
)

// Setting reports one toggle of the document under id.
func (c *Core) Setting(id string, which types.Setting) (bool, error) {
	if id == "" {
		return false, types.ErrInvalidID
	}
	var on bool
	err := c.files.With(id, func(e table.Entry) error {
		on = e.Doc.Settings().Get(which)
		return nil
	})
	return on, err
}

// SetSetting changes one toggle of the document under id. The change
// applies to later reads, writes and saves of that document only.
func (c *Core) SetSetting(id string, which types.Setting, enabled bool) error {
	if id == "" {
		return types.ErrInvalidID
	}
	return c.files.With(id, func(e table.Entry) error {
		if err := e.Doc.SetSetting(which, enabled); err != nil {
			return fmt.Errorf("set %s on %q: %w", which, id, err)
		}
		c.log.Debug("changed setting", "id", id, "setting", which.String(), "enabled", enabled)
		return nil
	})
}
