// ABOUTME: Schema canonicalization and data migration between backends.
// ABOUTME: Coerces legacy completed flags once per schema version.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/harperreed/trainer/internal/kv"
	"github.com/harperreed/trainer/internal/models"
)

// SchemaVersion is the current persisted schema version.
const SchemaVersion = 1

// Migrate rewrites records from older schema versions into canonical form.
// Workouts and sets store completed as a JSON boolean; older data may carry
// strings ("true") or numbers (1). Bare workout objects get a sequence envelope.
// A read-only store is left as is.
func (r *Repository) Migrate() error {
	err := r.migrate()
	if errors.Is(err, kv.ErrReadOnly) {
		log.Warn().Err(err).Msg("store is read-only, skipping schema migration")
		return nil
	}
	return err
}

func (r *Repository) migrate() error {
	var version int
	if _, err := r.getJSON(schemaVersionKey, &version); err != nil {
		return err
	}
	if version >= SchemaVersion {
		return nil
	}

	keys, err := r.store.Keys(WorkoutPrefix)
	if err != nil {
		return fmt.Errorf("list workouts: %w", err)
	}
	if err := r.syncSeq(keys); err != nil {
		return err
	}

	rewritten := 0
	for _, k := range keys {
		changed, err := r.migrateWorkoutKey(k)
		if err != nil {
			return fmt.Errorf("migrate %s: %w", k, err)
		}
		if changed {
			rewritten++
		}
	}

	if changed, err := r.migrateSessionKey(); err != nil {
		return fmt.Errorf("migrate session: %w", err)
	} else if changed {
		rewritten++
	}

	if rewritten > 0 {
		log.Info().Int("records", rewritten).Int("version", SchemaVersion).Msg("migrated stored records")
	}
	return r.putJSON(schemaVersionKey, SchemaVersion)
}

// syncSeq raises the sequence counter above every enveloped record so bare
// records migrated afterwards sort last.
func (r *Repository) syncSeq(keys []string) error {
	var maxSeq int64
	for _, k := range keys {
		var env struct {
			Seq int64 `json:"seq"`
		}
		if _, err := r.getJSON(k, &env); err != nil {
			return fmt.Errorf("migrate %s: %w", k, err)
		}
		if env.Seq > maxSeq {
			maxSeq = env.Seq
		}
	}
	if maxSeq == 0 {
		return nil
	}
	data, err := r.store.Get(workoutSeqKey)
	if err == nil {
		if cur, perr := strconv.ParseInt(string(data), 10, 64); perr == nil && cur >= maxSeq {
			return nil
		}
	}
	return r.store.Set(workoutSeqKey, []byte(strconv.FormatInt(maxSeq, 10)))
}

func (r *Repository) migrateWorkoutKey(key string) (bool, error) {
	data, err := r.store.Get(key)
	if err != nil {
		return false, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return false, fmt.Errorf("decode: %w", err)
	}

	changed := false
	workout, ok := raw["workout"].(map[string]any)
	if !ok {
		// Bare workout without the sequence envelope.
		seq, err := r.nextSeq()
		if err != nil {
			return false, err
		}
		workout = raw
		raw = map[string]any{"seq": seq, "workout": workout}
		changed = true
	}
	if canonicalizeWorkout(workout) {
		changed = true
	}
	if !changed {
		return false, nil
	}
	return true, r.putJSON(key, raw)
}

func (r *Repository) migrateSessionKey() (bool, error) {
	var raw map[string]any
	found, err := r.getJSON(sessionKey, &raw)
	if err != nil || !found {
		return false, err
	}
	current, ok := raw["current"].(map[string]any)
	if !ok || !canonicalizeWorkout(current) {
		return false, nil
	}
	return true, r.putJSON(sessionKey, raw)
}

// canonicalizeWorkout coerces completed on the workout and its sets in place.
func canonicalizeWorkout(w map[string]any) bool {
	changed := canonicalizeCompleted(w)
	sets, _ := w["sets"].([]any)
	for _, s := range sets {
		if set, ok := s.(map[string]any); ok && canonicalizeCompleted(set) {
			changed = true
		}
	}
	return changed
}

func canonicalizeCompleted(m map[string]any) bool {
	v := m["completed"]
	if _, ok := v.(bool); ok {
		return false
	}
	m["completed"] = models.CoerceBool(v)
	return true
}

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Workouts  int
	Exercises int
	Profile   bool
	Session   bool
}

// MigrateData copies all data from src to dst. Workouts are copied in storage
// order so dst keeps the same listing order.
func MigrateData(src, dst *Repository) (*MigrateSummary, error) {
	summary := &MigrateSummary{}

	exercises, err := src.ListExercises()
	if err != nil {
		return nil, fmt.Errorf("list source exercises: %w", err)
	}
	for i := range exercises {
		if err := dst.SaveExercise(&exercises[i]); err != nil {
			return nil, fmt.Errorf("create exercise %s: %w", exercises[i].ID, err)
		}
		summary.Exercises++
	}

	workouts, err := src.ListWorkouts()
	if err != nil {
		return nil, fmt.Errorf("list source workouts: %w", err)
	}
	for i := range workouts {
		if err := dst.SaveWorkout(&workouts[i]); err != nil {
			return nil, fmt.Errorf("create workout %s: %w", workouts[i].ID, err)
		}
		summary.Workouts++
	}

	var profileRaw json.RawMessage
	if found, err := src.getJSON(profileKey, &profileRaw); err != nil {
		return nil, err
	} else if found {
		p, err := src.Profile()
		if err != nil {
			return nil, err
		}
		if err := dst.SaveProfile(p); err != nil {
			return nil, err
		}
		summary.Profile = true
	}

	unit, err := src.WeightUnit()
	if err != nil {
		return nil, err
	}
	if err := dst.SetWeightUnit(unit); err != nil {
		return nil, err
	}

	if recs, err := src.CachedRecommendations(); err != nil {
		return nil, err
	} else if recs != nil {
		if err := dst.putJSON(recommendationsKey, recs); err != nil {
			return nil, err
		}
	}

	sess, err := src.LoadSession()
	if err != nil {
		return nil, err
	}
	if sess.Current != nil {
		if err := dst.SaveSession(sess); err != nil {
			return nil, err
		}
		summary.Session = true
	}

	return summary, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or subdirectories.
// Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}
