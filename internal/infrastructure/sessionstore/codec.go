package sessionstore

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/fifa-tracker/internal/domain/session"
)

const keyPrefix = "session:"

func storageKey(id string) string {
	return keyPrefix + id
}

func encodeState(state session.State) ([]byte, error) {
	raw, err := sonic.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("encode session state: %w", err)
	}
	return raw, nil
}

func decodeState(raw []byte) (session.State, error) {
	var state session.State
	if err := sonic.Unmarshal(raw, &state); err != nil {
		return session.State{}, fmt.Errorf("decode session state: %w", err)
	}
	return state, nil
}
