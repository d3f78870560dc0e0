package samples

import "go.uber.org/zap"

// LogSkipped reports every unparseable row once, at load time.
func (t *Table) LogSkipped(log *zap.Logger) {
	for _, sk := range t.Skipped {
		log.Warn("skipping sample row",
			zap.Int("line", sk.Line),
			zap.String("key", sk.Key),
			zap.String("reason", sk.Reason),
		)
	}
	log.Info("sample rows loaded", zap.Int("rows", len(t.Rows)), zap.Int("skipped", len(t.Skipped)))
}
