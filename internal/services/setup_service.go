package services

type SetupProfileRepository interface {
	Count() (int64, error)
}

// SetupService answers whether the calculator flow still needs to run, i.e.
// no profile has been stored yet.
type SetupService struct {
	profiles SetupProfileRepository
}

func NewSetupService(profiles SetupProfileRepository) *SetupService {
	return &SetupService{profiles: profiles}
}

func (service *SetupService) RequiresInitialSetup() (bool, error) {
	profileCount, err := service.profiles.Count()
	if err != nil {
		return false, err
	}
	return profileCount == 0, nil
}
