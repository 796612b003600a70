package constant

// AsciiArtLogo is the application's banner shown in the root help text.
const AsciiArtLogo = `
 _    _
| | _(_)_ __   ___
| |/ / | '_ \ / _ \
|   <| | | | | (_) |
|_|\_\_|_| |_|\___/`
