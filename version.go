package cruxcat

// Version is the current cruxcat release.
const Version = "0.1.0"
