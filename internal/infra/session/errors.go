package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не существует или истекла
	ErrSessionNotFound = errors.New("session.store: session not found")

	// ErrVersionConflict возвращается при compare-and-set с устаревшей версией
	// черновика - обновление от отставшего писателя отклоняется
	ErrVersionConflict = errors.New("session.store: draft version conflict")
)
