package service

import (
	"errors"

	"LiveSell/dao"
	"LiveSell/models"
)

type SettingsService struct {
	Settings *dao.SettingsStore
}

var _ ISettingsService = (*SettingsService)(nil)

type ISettingsService interface {
	Get() models.Settings
	Update(settings models.Settings) (models.Settings, error)
}

func (s *SettingsService) Get() models.Settings {
	return s.Settings.Settings()
}

// Update 整体替换式保存，店铺名不允许清空
func (s *SettingsService) Update(settings models.Settings) (models.Settings, error) {
	if settings.StoreName == "" {
		return models.Settings{}, errors.New("店铺名称不能为空")
	}
	s.Settings.Replace(settings)
	return settings, nil
}
