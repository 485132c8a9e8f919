package usecase

import (
	"context"

	"github.com/nemuelw/protodesk/internal/application/port"
	"github.com/nemuelw/protodesk/internal/logging"
)

// InstallDesktopInput contains the input for the install operation.
type InstallDesktopInput struct {
	IconData []byte
}

// InstallDesktopUseCase installs the launcher entry and icon so Protodesk shows
// up in the desktop's application menu.
type InstallDesktopUseCase struct {
	desktop port.DesktopIntegration
}

// NewInstallDesktopUseCase creates a new InstallDesktopUseCase.
func NewInstallDesktopUseCase(desktop port.DesktopIntegration) *InstallDesktopUseCase {
	return &InstallDesktopUseCase{desktop: desktop}
}

// InstallDesktopOutput contains the result of the install operation.
type InstallDesktopOutput struct {
	DesktopPath        string
	IconPath           string
	WasDesktopExisting bool
	WasIconExisting    bool
}

// Execute installs the desktop file and icon.
func (uc *InstallDesktopUseCase) Execute(ctx context.Context, input InstallDesktopInput) (*InstallDesktopOutput, error) {
	log := logging.FromContext(ctx)

	status, err := uc.desktop.GetStatus(ctx)
	if err != nil {
		return nil, err
	}

	output := &InstallDesktopOutput{
		WasDesktopExisting: status.DesktopFileInstalled,
		WasIconExisting:    status.IconInstalled,
	}

	desktopPath, err := uc.desktop.InstallDesktopFile(ctx)
	if err != nil {
		return nil, err
	}
	output.DesktopPath = desktopPath

	if len(input.IconData) > 0 {
		iconPath, err := uc.desktop.InstallIcon(ctx, input.IconData)
		if err != nil {
			return nil, err
		}
		output.IconPath = iconPath
	}

	log.Info().
		Str("desktop_path", output.DesktopPath).
		Str("icon_path", output.IconPath).
		Bool("was_desktop_existing", output.WasDesktopExisting).
		Bool("was_icon_existing", output.WasIconExisting).
		Msg("desktop install complete")

	return output, nil
}

// RemoveDesktopUseCase removes desktop integration files.
type RemoveDesktopUseCase struct {
	desktop port.DesktopIntegration
}

// NewRemoveDesktopUseCase creates a new RemoveDesktopUseCase.
func NewRemoveDesktopUseCase(desktop port.DesktopIntegration) *RemoveDesktopUseCase {
	return &RemoveDesktopUseCase{desktop: desktop}
}

// RemoveDesktopOutput contains the result of the remove operation.
type RemoveDesktopOutput struct {
	WasDesktopInstalled bool
	WasIconInstalled    bool
	RemovedDesktopPath  string
	RemovedIconPath     string
}

// Execute removes desktop integration.
func (uc *RemoveDesktopUseCase) Execute(ctx context.Context) (*RemoveDesktopOutput, error) {
	log := logging.FromContext(ctx)

	status, err := uc.desktop.GetStatus(ctx)
	if err != nil {
		return nil, err
	}

	output := &RemoveDesktopOutput{
		WasDesktopInstalled: status.DesktopFileInstalled,
		WasIconInstalled:    status.IconInstalled,
		RemovedDesktopPath:  status.DesktopFilePath,
		RemovedIconPath:     status.IconFilePath,
	}

	if err := uc.desktop.RemoveDesktopFile(ctx); err != nil {
		return nil, err
	}

	if err := uc.desktop.RemoveIcon(ctx); err != nil {
		return nil, err
	}

	log.Info().
		Bool("was_desktop_installed", output.WasDesktopInstalled).
		Bool("was_icon_installed", output.WasIconInstalled).
		Msg("desktop integration removed")

	return output, nil
}
