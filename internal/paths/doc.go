// Provides platform-appropriate paths for pyfreeze configuration.
//
// The user-level config file follows XDG conventions on Linux and
// platform-native conventions on macOS and Windows. The project file lives in
// the workspace root and takes precedence over it.
package paths
