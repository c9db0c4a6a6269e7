package participant

import (
	"log/slog"

	"participant-registration/internal/global/logger"
)

var log *slog.Logger

type ModuleParticipant struct{}

func (p *ModuleParticipant) GetName() string {
	return "Participant"
}

func (p *ModuleParticipant) Init() {
	log = logger.New("Participant")
}
