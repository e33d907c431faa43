// This file is part of autopad.
//
// autopad is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// autopad is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with autopad.  If not, see <https://www.gnu.org/licenses/>.

// Package paths resolves the location of resources used by the application,
// such as the preferences file.
//
// If a directory named ".autopad" exists in the current working directory then
// resources are taken from there. Otherwise the "autopad" directory in the
// user's configuration directory (os.UserConfigDir()) is used. The directory is
// created the first time a resource path is requested.
package paths
