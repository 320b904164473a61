package internal

// Version is the current songdeck version
const Version = "0.3.0"
