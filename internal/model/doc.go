package model

// Package model defines the hierarchy data structures shared across the app:
// scene items, their attached components, and the Togglable capability used
// by click and drag toggling. Items are owned by the scene provider; other
// packages only read them and flip their enabled state.
