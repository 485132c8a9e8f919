package usecase

import (
	"context"
	"fmt"

	"github.com/nemuelw/protodesk/internal/application/port"
	"github.com/nemuelw/protodesk/internal/domain/entity"
	"github.com/nemuelw/protodesk/internal/logging"
)

// sqliteSidecars are the files SQLite keeps next to a WAL-mode database.
var sqliteSidecars = []string{"-wal", "-shm"}

// PurgeDataUseCase finds and deletes local Protodesk data. Purging the
// profile signs the user out of every Proton service.
type PurgeDataUseCase struct {
	fs      port.FileSystem
	xdg     port.XDGPaths
	desktop port.DesktopIntegration
	dbPath  string
}

// NewPurgeDataUseCase creates a new PurgeDataUseCase. dbPath is the download
// history database file.
func NewPurgeDataUseCase(fs port.FileSystem, xdg port.XDGPaths, desktop port.DesktopIntegration, dbPath string) *PurgeDataUseCase {
	return &PurgeDataUseCase{fs: fs, xdg: xdg, desktop: desktop, dbPath: dbPath}
}

// GetPurgeTargets returns all purge targets with their current size.
func (uc *PurgeDataUseCase) GetPurgeTargets(ctx context.Context) ([]entity.PurgeTarget, error) {
	profileDir, err := uc.xdg.WebDataDir()
	if err != nil {
		return nil, err
	}
	cacheDir, err := uc.xdg.WebCacheDir()
	if err != nil {
		return nil, err
	}
	configDir, err := uc.xdg.ConfigDir()
	if err != nil {
		return nil, err
	}

	baseTargets := []entity.PurgeTarget{
		{Type: entity.PurgeTargetProfile, Path: profileDir, Description: "web profile (cookies, sign-in)"},
		{Type: entity.PurgeTargetCache, Path: cacheDir, Description: "web cache"},
		{Type: entity.PurgeTargetHistory, Path: uc.dbPath, Description: "download history"},
		{Type: entity.PurgeTargetConfig, Path: configDir, Description: "config"},
	}

	status, statusErr := uc.desktop.GetStatus(ctx)
	if statusErr != nil {
		logging.FromContext(ctx).Warn().Err(statusErr).Msg("failed to get desktop integration status")
	}
	if status != nil {
		baseTargets = append(baseTargets,
			entity.PurgeTarget{Type: entity.PurgeTargetDesktopFile, Path: status.DesktopFilePath, Description: "desktop file"},
			entity.PurgeTarget{Type: entity.PurgeTargetIcon, Path: status.IconFilePath, Description: "icon"},
		)
	}

	targets := make([]entity.PurgeTarget, 0, len(baseTargets))
	for _, t := range baseTargets {
		if t.Path == "" {
			targets = append(targets, t)
			continue
		}
		exists, err := uc.fs.Exists(ctx, t.Path)
		if err != nil {
			return nil, err
		}
		t.Exists = exists
		if exists {
			if t.Size, err = uc.fs.GetSize(ctx, t.Path); err != nil {
				return nil, err
			}
		}
		targets = append(targets, t)
	}
	return targets, nil
}

// PurgeInput specifies which target types to purge.
type PurgeInput struct {
	TargetTypes []entity.PurgeTargetType
}

// PurgeOutput contains the results of the purge operation.
type PurgeOutput struct {
	Results      []entity.PurgeResult
	TotalSize    int64
	SuccessCount int
	FailureCount int
}

// Execute purges the selected target types that exist.
// Continues on errors, collecting all results.
func (uc *PurgeDataUseCase) Execute(ctx context.Context, input PurgeInput) (*PurgeOutput, error) {
	log := logging.FromContext(ctx)

	targets, err := uc.GetPurgeTargets(ctx)
	if err != nil {
		return nil, err
	}

	selected := make(map[entity.PurgeTargetType]struct{}, len(input.TargetTypes))
	for _, tt := range input.TargetTypes {
		selected[tt] = struct{}{}
	}

	out := &PurgeOutput{}
	for _, t := range targets {
		if _, ok := selected[t.Type]; !ok || !t.Exists {
			continue
		}

		res := entity.PurgeResult{Target: t}
		out.TotalSize += t.Size

		err := uc.remove(ctx, t)
		if err != nil {
			res.Error = err
			out.FailureCount++
			log.Warn().Err(err).Str("path", t.Path).Stringer("type", t.Type).Msg("purge target failed")
		} else {
			res.Success = true
			out.SuccessCount++
			log.Info().Str("path", t.Path).Stringer("type", t.Type).Msg("purge target removed")
		}
		out.Results = append(out.Results, res)
	}

	if out.FailureCount > 0 {
		return out, fmt.Errorf("failed to remove %d items", out.FailureCount)
	}
	return out, nil
}

func (uc *PurgeDataUseCase) remove(ctx context.Context, t entity.PurgeTarget) error {
	switch t.Type {
	case entity.PurgeTargetDesktopFile:
		return uc.desktop.RemoveDesktopFile(ctx)
	case entity.PurgeTargetIcon:
		return uc.desktop.RemoveIcon(ctx)
	case entity.PurgeTargetHistory:
		if err := uc.fs.RemoveAll(ctx, t.Path); err != nil {
			return err
		}
		for _, suffix := range sqliteSidecars {
			if err := uc.fs.RemoveAll(ctx, t.Path+suffix); err != nil {
				return err
			}
		}
		return nil
	default:
		return uc.fs.RemoveAll(ctx, t.Path)
	}
}

// PurgeAll purges every existing target.
func (uc *PurgeDataUseCase) PurgeAll(ctx context.Context) (*PurgeOutput, error) {
	targets, err := uc.GetPurgeTargets(ctx)
	if err != nil {
		return nil, err
	}

	types := make([]entity.PurgeTargetType, 0, len(targets))
	for _, t := range targets {
		types = append(types, t.Type)
	}
	return uc.Execute(ctx, PurgeInput{TargetTypes: types})
}
