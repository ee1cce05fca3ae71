package internal

// Version is the current grevocab release.
const Version = "0.3.0"
