/*
Package texres resolves logical texture paths to files under an install
root and decodes them into caller-owned textures.

A logical path such as "Toolbar/icons/stop" is looked up at
root+"GameData/"+path. When no file exists there, the suffixes
.png .jpg .gif .PNG .JPG .GIF .dds .DDS are probed in that order and the
first hit wins. DDS hits are parsed for a DXT1 or DXT5 FourCC and their
block payload is returned untouched; every other hit goes to an
ImageDecoder and comes back as 32-bit RGBA.

GetTexture adds a fallback to a host texture Database for paths that have
no file on disk.
*/
package texres
