package pg

import (
	"context"
	"encoding/json"

	"github.com/ibeloyar/chawp-vendor/internal/model"
)

// SaveDeviceToken - upsert push-токена устройства; токен также пишется в профиль пользователя
func (r *Repository) SaveDeviceToken(ctx context.Context, device model.DeviceToken) error {
	info, err := json.Marshal(device.DeviceInfo)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `INSERT INTO device_tokens (user_id, push_token, device_type, device_info)
		VALUES ($1, $2, $3, $4::jsonb)
		ON CONFLICT (user_id, device_type, push_token) DO UPDATE SET
			device_info = EXCLUDED.device_info,
			updated_at = NOW()`,
		device.UserID, device.PushToken, device.DeviceType, string(info))
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `UPDATE user_profiles SET push_token = $2, updated_at = NOW() WHERE id = $1`,
		device.UserID, device.PushToken)
	if err != nil {
		return err
	}

	return tx.Commit()
}
