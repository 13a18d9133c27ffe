package types

import "LiveSell/models"

// UpdateSettingsRequest 设置整体替换
type UpdateSettingsRequest = models.Settings
